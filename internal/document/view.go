package document

import "github.com/jonathan/resume-editor/internal/types"

// EditingView returns a copy of doc in which every empty repeatable section
// holds one blank placeholder item, giving the form an insertion point.
// Skills are edited as a single text value and are left as they are.
func EditingView(doc types.Document) types.Document {
	out := Clone(doc)
	for _, section := range types.Sections {
		if section == types.SectionSkills || out.Len(section) > 0 {
			continue
		}
		out, _ = SeedTemplate(out, section)
	}
	return out
}

// IsPlaceholder reports whether item index of section exists only in the
// editing view and not in doc.
func IsPlaceholder(doc types.Document, section types.Section, index int) bool {
	return index == 0 && doc.Len(section) == 0
}
