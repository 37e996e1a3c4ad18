// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// FileRecord is the predicate function for filerecord builders.
type FileRecord func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// SessionMemory is the predicate function for sessionmemory builders.
type SessionMemory func(*sql.Selector)
