package domain

// PromptState captures the intermediate values of a single prompt render.
type PromptState struct {
	Dir    string
	Inside bool
	GitDir string
	Folder *string
	Lines  []StatusLine
	Status string
	Prompt string
}

// FolderOrDefault returns the resolved folder, or def when resolution
// did not happen or failed.
func (s *PromptState) FolderOrDefault(def string) string {
	if s.Folder == nil {
		return def
	}
	return *s.Folder
}
