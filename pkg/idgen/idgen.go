// Package idgen issues collision-free entity ids. Ids are prefixed by entity
// kind so logs and snapshots stay greppable.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

func New(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

func NewUser() string    { return New("u") }
func NewPost() string    { return New("p") }
func NewRemix() string   { return New("r") }
func NewComment() string { return New("c") }
func NewDraft() string   { return New("d") }
