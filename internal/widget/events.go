package widget

// Role tells the container what kind of element an event came from.
type Role string

const (
	RoleContainer Role = "container"
	RoleItem      Role = "item"
	RoleText      Role = "text"
	RoleDelete    Role = "delete"
	RoleForm      Role = "form"
	RoleSearch    Role = "search"
)

// Element is a rendered view element. ItemID is set for elements that
// belong to a row.
type Element struct {
	Role   Role
	ItemID string
}

// Container is the element clicks land on when they hit no row.
var Container = Element{Role: RoleContainer}

type EventType string

const (
	EventSubmit EventType = "submit"
	EventClick  EventType = "click"
	EventKeyUp  EventType = "keyup"
)

// Event is a user action observed by the page.
// Value carries the field content for submit and keyup.
type Event struct {
	Type   EventType
	Target Element
	Value  string
}

// Result reports what the page has to do after an event.
type Result struct {
	Changed    bool // visible sequence must be redrawn
	ClearInput bool // the field that produced the event must be reset
}

// Handle is the single listener for the whole page. Clicks are delegated:
// the originating element decides which item, if any, is affected.
func (w *ListWidget) Handle(ev Event) Result {
	var res Result
	switch ev.Type {
	case EventSubmit:
		if _, ok := w.Add(ev.Value); ok {
			res = Result{Changed: true, ClearInput: true}
		}
	case EventClick:
		if ev.Target.Role == RoleDelete {
			res.Changed = w.Delete(ev.Target.ItemID)
		}
	case EventKeyUp:
		w.Filter(NormalizeTerm(ev.Value))
		res.Changed = true
	}
	w.logger.Debug("event", "type", ev.Type, "role", ev.Target.Role, "changed", res.Changed)
	return res
}
