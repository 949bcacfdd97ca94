package model

import (
	"strings"

	"github.com/google/uuid"
)

// ID identifies a container or an item. The prefix tells the two apart;
// nothing after it carries meaning.
type ID string

// Kind is the entity kind encoded in an ID prefix.
type Kind int

const (
	KindUnknown Kind = iota
	KindContainer
	KindItem
)

const (
	containerPrefix = "container-"
	itemPrefix      = "item-"
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// NewContainerID returns a fresh container-<uuid> identifier.
func NewContainerID() ID { return ID(containerPrefix + uuid.NewString()) }

// NewItemID returns a fresh item-<uuid> identifier.
func NewItemID() ID { return ID(itemPrefix + uuid.NewString()) }

// Kind reports the entity kind by prefix only.
func (id ID) Kind() Kind {
	switch s := string(id); {
	case strings.HasPrefix(s, containerPrefix):
		return KindContainer
	case strings.HasPrefix(s, itemPrefix):
		return KindItem
	default:
		return KindUnknown
	}
}

func (id ID) IsContainer() bool { return id.Kind() == KindContainer }
func (id ID) IsItem() bool      { return id.Kind() == KindItem }

func (id ID) String() string { return string(id) }
