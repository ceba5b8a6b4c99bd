package owpml

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	sectionPattern = regexp.MustCompile(`(?i)^Contents/section\d+\.xml$`)
	sectionHref    = regexp.MustCompile(`(?i)Contents/section\d+\.xml$`)
	sectionNumber  = regexp.MustCompile(`(?i)section(\d+)\.xml`)
)

// SectionPaths returns the body parts in reading order. The spine wins
// when it resolves to existing XML parts; otherwise Contents/sectionN.xml
// names are used, and as a last resort every Contents/*.xml part whose
// root is a section element.
func (r *Reader) SectionPaths() []string {
	if paths := r.spineSections(); len(paths) > 0 {
		r.logger.Debug("sections located", "by", "spine", "count", len(paths))
		return paths
	}
	if paths := r.namedSections(); len(paths) > 0 {
		r.logger.Debug("sections located", "by", "name", "count", len(paths))
		return paths
	}
	paths := r.sniffedSections()
	r.logger.Debug("sections located", "by", "content", "count", len(paths))
	return paths
}

func (r *Reader) spineSections() []string {
	d := r.descriptor()
	if d == nil || len(d.spine) == 0 {
		return nil
	}

	hrefs := make(map[string]string, len(d.manifest))
	for _, it := range d.manifest {
		if it.ID != "" && sectionHref.MatchString(it.Href) {
			hrefs[it.ID] = it.Href
		}
	}

	var out []string
	for _, id := range d.spine {
		if href, ok := hrefs[id]; ok && r.files.Has(href) {
			out = append(out, href)
		}
	}
	return out
}

func (r *Reader) namedSections() []string {
	var out []string
	for _, p := range r.files.Paths() {
		if sectionPattern.MatchString(p) {
			out = append(out, p)
		}
	}
	sortSections(out)
	return out
}

func (r *Reader) sniffedSections() []string {
	var out []string
	for _, p := range r.files.Paths() {
		if !strings.HasPrefix(p, "Contents/") || !strings.HasSuffix(strings.ToLower(p), ".xml") {
			continue
		}
		if sectionRoot(r.parsePart(p)) != nil {
			out = append(out, p)
		}
	}
	sortSections(out)
	return out
}

// sortSections orders paths by their numeric section suffix; paths
// without one count as 0 and keep their relative order.
func sortSections(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return sectionIndex(paths[i]) < sectionIndex(paths[j])
	})
}

func sectionIndex(p string) int64 {
	m := sectionNumber.FindStringSubmatch(p)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
