package lsp

import "tagwise/internal/source"

// applyChanges applies content changes in order. Each ranged change is
// resolved against the document produced by the previous one, so the line
// index is rebuilt per change.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		file := source.NewFile("", []byte(text), source.FileVirtual)
		start := offsetForPositionInFile(file, change.Range.Start)
		end := offsetForPositionInFile(file, change.Range.End)
		if end < start {
			// перевёрнутый диапазон: вставка в начале
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}
