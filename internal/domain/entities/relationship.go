package entities

import "time"

// RelationType defines the kind of relationship between two persons.
type RelationType string

const (
	RelationParent  RelationType = "parent"
	RelationChild   RelationType = "child"
	RelationSibling RelationType = "sibling"
	RelationPibling RelationType = "pibling"
	RelationNibling RelationType = "nibling"
	RelationCousin  RelationType = "cousin"
	RelationFriend  RelationType = "friend"
)

// Relationship represents a directed, weighted connection between two
// persons. Weight expresses the strength of the bond.
type Relationship struct {
	ID        string       `json:"id" yaml:"id"`
	Type      RelationType `json:"type" yaml:"type"`
	Weight    float64      `json:"weight" yaml:"weight"`
	From      string       `json:"from" yaml:"from"`
	To        string       `json:"to" yaml:"to"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
}
