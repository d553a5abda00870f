package model

// Sentence is a span of text with its source position. Content and LineNum
// are fixed at parse time; Tokens is filled in by sentence preprocessors
// before validation and read by validators afterwards.
type Sentence struct {
	Content         string
	LineNum         int
	IsFirstSentence bool
	Tokens          []string
}

// NewSentence creates a sentence at the given source line.
func NewSentence(content string, lineNum int) *Sentence {
	return &Sentence{Content: content, LineNum: lineNum}
}

// Paragraph is an ordered run of sentences.
type Paragraph struct {
	Sentences []*Sentence
}

// AppendSentence adds a sentence at the end of the paragraph.
func (p *Paragraph) AppendSentence(s *Sentence) {
	p.Sentences = append(p.Sentences, s)
}

// ListElement is one item of a list block.
type ListElement struct {
	Level     int
	Sentences []*Sentence
}

// ListBlock is an ordered run of list elements.
type ListBlock struct {
	Elements []*ListElement
}

// AppendElement adds a list element at the end of the block.
func (b *ListBlock) AppendElement(e *ListElement) {
	b.Elements = append(b.Elements, e)
}

// Section is a heading plus the paragraphs and list blocks under it.
// HeaderContents holds the heading text as sentences; a synthetic section
// created for content before the first heading has an empty header.
type Section struct {
	Level          int
	HeaderContents []*Sentence
	Paragraphs     []*Paragraph
	ListBlocks     []*ListBlock
}

// NewSection creates a section with the given heading level and header sentences.
func NewSection(level int, header []*Sentence) *Section {
	return &Section{Level: level, HeaderContents: header}
}

// AppendParagraph adds a paragraph at the end of the section.
func (s *Section) AppendParagraph(p *Paragraph) {
	s.Paragraphs = append(s.Paragraphs, p)
}

// AppendListBlock adds a list block at the end of the section.
func (s *Section) AppendListBlock(b *ListBlock) {
	s.ListBlocks = append(s.ListBlocks, b)
}

// Document is an ordered sequence of sections parsed from one source.
// Documents are compared by identity: the engine keys its result map on
// the *Document pointer.
type Document struct {
	FileName string
	Sections []*Section
}

// AppendSection adds a section at the end of the document.
func (d *Document) AppendSection(s *Section) {
	d.Sections = append(d.Sections, s)
}

// LastSection returns the most recently appended section, or nil.
func (d *Document) LastSection() *Section {
	if len(d.Sections) == 0 {
		return nil
	}
	return d.Sections[len(d.Sections)-1]
}

// DocumentCollection is an ordered batch of documents validated together.
type DocumentCollection struct {
	Documents []*Document
}

// Size returns the number of documents in the collection.
func (c *DocumentCollection) Size() int {
	return len(c.Documents)
}

// CollectionBuilder assembles a DocumentCollection, preserving append order.
type CollectionBuilder struct {
	documents []*Document
}

// AddDocument appends a document to the collection being built.
func (b *CollectionBuilder) AddDocument(d *Document) *CollectionBuilder {
	b.documents = append(b.documents, d)
	return b
}

// Build returns the assembled collection.
func (b *CollectionBuilder) Build() *DocumentCollection {
	return &DocumentCollection{Documents: b.documents}
}
