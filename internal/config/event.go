package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Event is a git lifecycle trigger. The set is closed; string form is
// kebab-case and invalid strings are rejected at parse time.
type Event string

const (
	EventPreCommit        Event = "pre-commit"
	EventPrepareCommitMsg Event = "prepare-commit-msg"
	EventCommitMsg        Event = "commit-msg"
	EventPostCommit       Event = "post-commit"
	EventPreMergeCommit   Event = "pre-merge-commit"
	EventPrePush          Event = "pre-push"
	EventPreRebase        Event = "pre-rebase"
	EventPostCheckout     Event = "post-checkout"
	EventPostMerge        Event = "post-merge"
	EventPostRewrite      Event = "post-rewrite"
	EventUpdate           Event = "update"
	EventPreAutoGC        Event = "pre-auto-gc"
)

// DefaultEvent is assumed for hooks that don't declare on_event.
const DefaultEvent = EventPreCommit

// knownEvents lists every supported event, in git documentation order.
var knownEvents = []Event{
	EventPreCommit,
	EventPrepareCommitMsg,
	EventCommitMsg,
	EventPostCommit,
	EventPreMergeCommit,
	EventPrePush,
	EventPreRebase,
	EventPostCheckout,
	EventPostMerge,
	EventPostRewrite,
	EventUpdate,
	EventPreAutoGC,
}

// Events returns all supported events.
func Events() []Event {
	out := make([]Event, len(knownEvents))
	copy(out, knownEvents)
	return out
}

// EventNames returns all supported event names, for CLI completion.
func EventNames() []string {
	names := make([]string, len(knownEvents))
	for i, e := range knownEvents {
		names[i] = string(e)
	}
	return names
}

// ParseEvent converts a kebab-case string into an Event.
func ParseEvent(s string) (Event, error) {
	for _, e := range knownEvents {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown hook event %q", s)
}

// String returns the kebab-case form.
func (e Event) String() string {
	return string(e)
}

// UnmarshalYAML validates the event name while decoding.
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseEvent(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
