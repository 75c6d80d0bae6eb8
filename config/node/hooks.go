package node

// Hooks are lists of commands to be executed on the host at various points of
// an action, keyed by action ("apply", "resume", "reset") and stage ("before",
// "after")
type Hooks map[string]map[string][]string

// ForActionAndStage returns a list of hooks for the given action and stage
func (h Hooks) ForActionAndStage(action, stage string) []string {
	if h[action] == nil {
		return nil
	}
	return h[action][stage]
}
