package validated

// Target names the field a value is validated under. Key is the machine
// name used for documentation, Label the human name used in messages.
//
// Declare the targets of a form once as package-level values:
//
//	var (
//	    FirstName = validated.NewTarget("firstName", "first name")
//	    Email     = validated.NewTarget("email", "email")
//	)
type Target struct {
	Key   string
	Label string
}

// NewTarget returns a Target. An empty label falls back to key.
func NewTarget(key, label string) Target {
	if label == "" {
		label = key
	}
	return Target{Key: key, Label: label}
}

func (t Target) String() string {
	return t.Label
}

// Errors returns a single message for reason, prefixed with the label.
func (t Target) Errors(reason string) Errors {
	return Errors{t.Label + ": " + reason}
}
