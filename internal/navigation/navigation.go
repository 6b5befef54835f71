package navigation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dotcomponents/internal/domain"
	"dotcomponents/internal/dotcomponents"
)

type menuFile struct {
	Pillars []struct {
		Title string `yaml:"title"`
		URL   string `yaml:"url"`
		Links []struct {
			Title string `yaml:"title"`
			URL   string `yaml:"url"`
		} `yaml:"links"`
	} `yaml:"pillars"`
	OtherLinks []struct {
		Title string `yaml:"title"`
		URL   string `yaml:"url"`
	} `yaml:"other_links"`
}

// Builder produces the site navigation menu. The loaded menu is immutable;
// Build returns a fresh copy per request with relative URLs resolved
// against the site URL and the edition front prepended.
type Builder struct {
	menu    dotcomponents.NavMenu
	siteURL string
}

func NewBuilder(menu dotcomponents.NavMenu, siteURL string) *Builder {
	return &Builder{menu: menu, siteURL: strings.TrimRight(siteURL, "/")}
}

// Load reads a navigation file: pillars with their links, plus the
// standalone links shown outside any pillar.
func Load(path, siteURL string) (*Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read navigation file: %w", err)
	}

	var mf menuFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse navigation file: %w", err)
	}

	menu := dotcomponents.NavMenu{
		Pillars:    make([]dotcomponents.NavPillar, 0, len(mf.Pillars)),
		OtherLinks: make([]dotcomponents.NavLink, 0, len(mf.OtherLinks)),
	}
	for _, p := range mf.Pillars {
		pillar := dotcomponents.NavPillar{
			Title: p.Title,
			URL:   p.URL,
			Links: make([]dotcomponents.NavLink, 0, len(p.Links)),
		}
		for _, l := range p.Links {
			pillar.Links = append(pillar.Links, dotcomponents.NavLink{Title: l.Title, URL: l.URL})
		}
		menu.Pillars = append(menu.Pillars, pillar)
	}
	for _, l := range mf.OtherLinks {
		menu.OtherLinks = append(menu.OtherLinks, dotcomponents.NavLink{Title: l.Title, URL: l.URL})
	}

	return NewBuilder(menu, siteURL), nil
}

// Build returns the menu for one request. The edition front is the first
// entry of OtherLinks; relative URLs resolve against the site URL.
func (b *Builder) Build(rc domain.RequestContext) dotcomponents.NavMenu {
	menu := dotcomponents.NavMenu{
		Pillars:    make([]dotcomponents.NavPillar, 0, len(b.menu.Pillars)),
		OtherLinks: make([]dotcomponents.NavLink, 0, len(b.menu.OtherLinks)+1),
	}

	for _, p := range b.menu.Pillars {
		pillar := dotcomponents.NavPillar{
			Title: p.Title,
			URL:   b.resolve(p.URL),
			Links: make([]dotcomponents.NavLink, 0, len(p.Links)),
		}
		for _, l := range p.Links {
			pillar.Links = append(pillar.Links, dotcomponents.NavLink{Title: l.Title, URL: b.resolve(l.URL)})
		}
		menu.Pillars = append(menu.Pillars, pillar)
	}

	menu.OtherLinks = append(menu.OtherLinks, dotcomponents.NavLink{
		Title: rc.Edition.DisplayName,
		URL:   b.siteURL + "/" + rc.Edition.ID,
	})
	for _, l := range b.menu.OtherLinks {
		menu.OtherLinks = append(menu.OtherLinks, dotcomponents.NavLink{Title: l.Title, URL: b.resolve(l.URL)})
	}

	return menu
}

func (b *Builder) resolve(u string) string {
	if strings.HasPrefix(u, "/") {
		return b.siteURL + u
	}
	return u
}
