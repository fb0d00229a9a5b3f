package catalog

import "strings"

// ProjectFilter narrows the project list. Empty fields match everything.
type ProjectFilter struct {
	Status string
	Kind   string
	Query  string
}

// Active reports whether any criterion is set.
func (f ProjectFilter) Active() bool {
	return f.Status != "" || f.Kind != "" || strings.TrimSpace(f.Query) != ""
}

// FilterProjects returns the projects matching f, preserving order.
func FilterProjects(projects []Project, f ProjectFilter) []Project {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.Status != "" && !strings.EqualFold(p.Status, f.Status) {
			continue
		}
		if f.Kind != "" && !strings.EqualFold(p.Kind, f.Kind) {
			continue
		}
		if q != "" {
			haystack := strings.ToLower(p.Name + " " + p.Location)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the featured projects, or the first n when none are marked.
func Featured(projects []Project, n int) []Project {
	out := make([]Project, 0, n)
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
		if len(out) == n {
			return out
		}
	}
	if len(out) > 0 {
		return out
	}
	if len(projects) < n {
		n = len(projects)
	}
	return append(out, projects[:n]...)
}

// Kinds returns the distinct project kinds in first-seen order.
func Kinds(projects []Project) []string {
	seen := make(map[string]bool)
	var kinds []string
	for _, p := range projects {
		if !seen[p.Kind] {
			seen[p.Kind] = true
			kinds = append(kinds, p.Kind)
		}
	}
	return kinds
}

// Categories returns the distinct gallery categories in first-seen order.
func Categories(images []GalleryImage) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, img := range images {
		if !seen[img.Category] {
			seen[img.Category] = true
			cats = append(cats, img.Category)
		}
	}
	return cats
}

// ImagesInCategory returns the images of category; "" returns all.
func ImagesInCategory(images []GalleryImage, category string) []GalleryImage {
	if category == "" {
		return images
	}
	out := make([]GalleryImage, 0, len(images))
	for _, img := range images {
		if strings.EqualFold(img.Category, category) {
			out = append(out, img)
		}
	}
	return out
}
