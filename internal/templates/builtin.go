// Package templates holds the built-in starter templates shipped with the
// app. Built-ins are static, keyed by fixed ids, and cannot be deleted;
// user-saved templates live in the store instead.
package templates

// Built-in template ids. These are stable across releases because notes
// created from a template only copy its content, never reference it.
const (
	ShoppingListID     = "builtin-shopping"
	WeeklyTasksID      = "builtin-weekly"
	MeetingNotesID     = "builtin-meeting"
	PackingListID      = "builtin-packing"
	ProjectChecklistID = "builtin-project"
)

// BuiltIn is a shipped template preset.
type BuiltIn struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var builtIns = []BuiltIn{
	{
		ID:      ShoppingListID,
		Title:   "Shopping List",
		Content: "- Milk\n- Eggs\n- Bread\n- Butter\n- Coffee",
	},
	{
		ID:      WeeklyTasksID,
		Title:   "Weekly Tasks",
		Content: "- Plan the week\n- Grocery run\n- Laundry\n- Water plants\n- Call family",
	},
	{
		ID:      MeetingNotesID,
		Title:   "Meeting Notes",
		Content: "Attendees:\nAgenda:\n- Review last week\n- Open items\n- Next steps",
	},
	{
		ID:      PackingListID,
		Title:   "Packing List",
		Content: "- Passport\n- Charger\n- Toiletries\n- Headphones\n- Change of clothes",
	},
	{
		ID:      ProjectChecklistID,
		Title:   "Project Checklist",
		Content: "- Define scope\n- Draft plan\n- Assign owners\n- First milestone\n- Review & ship",
	},
}

// All returns the built-in templates in display order.
func All() []BuiltIn {
	out := make([]BuiltIn, len(builtIns))
	copy(out, builtIns)
	return out
}

// Lookup returns the built-in template with the given id, or false when
// the id is not a built-in.
func Lookup(id string) (BuiltIn, bool) {
	for _, t := range builtIns {
		if t.ID == id {
			return t, true
		}
	}
	return BuiltIn{}, false
}
