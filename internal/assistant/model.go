package assistant

type CitationKind string

const (
	CitationWeb  CitationKind = "web"
	CitationMaps CitationKind = "maps"
)

// Citation is one grounding reference returned with a reply: either a
// generic web source or a Google Maps place. The loose chunk shape coming
// back from the service is resolved into this type at the boundary.
type Citation struct {
	Kind  CitationKind `json:"kind"`
	URI   string       `json:"uri"`
	Title string       `json:"title,omitempty"`
}

// Reply is the assistant's answer plus any grounding citations.
type Reply struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
}
