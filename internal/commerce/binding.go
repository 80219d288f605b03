package commerce

// CanSubmitBinding decides whether a user may file a new enterprise-binding
// application. One APPROVED binding anywhere in the history closes the door
// for good, no matter how many REJECTED entries surround it. An empty
// history always allows submission.
func CanSubmitBinding(history []BindingStatus) bool {
	for _, s := range history {
		if s == BindingApproved {
			return false
		}
	}
	return true
}
