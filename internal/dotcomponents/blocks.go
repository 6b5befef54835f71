package dotcomponents

import "dotcomponents/internal/domain"

// ElementConverter maps one internal rich element onto its typed wire
// element. The assembler injects one; DefaultElementConverter is used
// when none is supplied.
type ElementConverter func(domain.Element) PageElement

// DefaultElementConverter maps the known element kinds onto discriminated
// wire elements. Unknown kinds degrade to a text element carrying their
// HTML so content never fails the pipeline.
func DefaultElementConverter(el domain.Element) PageElement {
	switch el.Kind {
	case "image":
		return PageElement{Type: "ImageBlockElement", URL: el.URL, Caption: el.Caption}
	case "rich-link":
		return PageElement{Type: "RichLinkBlockElement", URL: el.URL}
	case "embed":
		return PageElement{Type: "EmbedBlockElement", HTML: el.HTML}
	default:
		return PageElement{Type: "TextBlockElement", HTML: el.HTML}
	}
}

// NormalizeBlocks builds the wire body composition. Raw HTML is copied
// as-is; elements are converted in document order. A source with no block
// structure at all is a normal content state: body is empty and main is
// null, never an error.
func NormalizeBlocks(src *domain.ArticleBlocks, convert ElementConverter) Blocks {
	if convert == nil {
		convert = DefaultElementConverter
	}

	out := Blocks{Body: []Block{}}
	if src == nil {
		return out
	}

	if src.Main != nil {
		main := normalizeBlock(*src.Main, convert)
		out.Main = &main
	}
	for _, b := range src.Body {
		out.Body = append(out.Body, normalizeBlock(b, convert))
	}

	return out
}

func normalizeBlock(b domain.Block, convert ElementConverter) Block {
	elements := make([]PageElement, 0, len(b.Elements))
	for _, el := range b.Elements {
		elements = append(elements, convert(el))
	}
	return Block{BodyHTML: b.HTML, Elements: elements}
}
