package observer

type Outcome string

const (
	Added             Outcome = "added"
	AlreadySubscribed Outcome = "already_subscribed"
	Removed           Outcome = "removed"
	NotFound          Outcome = "not_found"
)

func (o Outcome) String() string {
	return string(o)
}
