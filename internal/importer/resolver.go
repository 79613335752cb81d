package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize reduces a worksheet label to a matching key: lower-cased, accents
// decomposed and stripped, anything left outside [a-z0-9] folded to a single
// space. "Peşin Ödenmiş Giderler (-)" and "Pesin Odenmis Giderler" meet in
// the middle.
func Normalize(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// aliasSpellings maps label variants seen in spreadsheet exports to the
// canonical label of the chart. Variants whose target is missing from the
// schema are dropped at build time.
var aliasSpellings = map[string]string{
	"Donem Kari Vergi Yukumlulugu":                               "Dönem Karı Vergi Yükümlülüğü",
	"Donem Kar Vergi Yukumlulugu":                                "Dönem Karı Vergi Yükümlülüğü",
	"Cari Donem Vergisiyle ilgili Varliklar":                     "Cari Dönem Vergisiyle İlgili Varlıklar",
	"Cari Donem Vergisiyle ilgili Borclar":                       "Cari Dönem Vergisiyle İlgili Borçlar",
	"Ozkaynak Yontemiyle Degerlenen Yatirimlardan Yukumlulukler": "Özkaynak Yöntemiyle Değerlenen Yatırımlardan Yükümlülükler",
	"Ozkaynak Yontemiyle Degerlenen Yatirimlar":                  "Özkaynak Yöntemiyle Değerlenen Yatırımlar",
	"Pesin Odenmis Giderler":                                     "Peşin Ödenmiş Giderler",
	"Ertelenmis Vergi Varligi":                                   "Ertelenmiş Vergi Varlığı",
	"Ertelenmis Gelirler":                                        "Ertelenmiş Gelirler",
	"Turkiye Cumhuriyeti Merkez Bankasi Hesabi":                  "Türkiye Cumhuriyet Merkez Bankası Hesabı",
	"Türkiye Cumhuriyeti Merkez Bankası Hesabı":                  "Türkiye Cumhuriyet Merkez Bankası Hesabı",
}

// Resolver maps worksheet labels to item codes. The chart reuses some labels
// across groups ("Diğer Borçlar" sits under both liability groups); such
// duplicates resolve through the group scope when the worksheet carried a
// header row, while the flat index keeps the last declaration.
type Resolver struct {
	items   map[string]string
	scoped  map[string]map[string]string
	groups  map[string]string
	aliases map[string]string
}

// NewResolver indexes the schema's labels.
func NewResolver(s *schema.Schema) *Resolver {
	r := &Resolver{
		items:   make(map[string]string),
		scoped:  make(map[string]map[string]string),
		groups:  make(map[string]string),
		aliases: make(map[string]string),
	}
	s.Walk(func(n *model.Node, _ int) {
		if n.IsGroup() {
			r.groups[Normalize(n.Label)] = n.Code
			return
		}
		key := Normalize(n.Label)
		r.items[key] = n.Code
		path, _ := s.Path(n.Code)
		for _, anc := range path[:len(path)-1] {
			m, ok := r.scoped[anc.Code]
			if !ok {
				m = make(map[string]string)
				r.scoped[anc.Code] = m
			}
			m[key] = n.Code
		}
	})
	for src, target := range aliasSpellings {
		if code, ok := r.items[Normalize(target)]; ok {
			r.aliases[Normalize(src)] = code
		}
	}
	return r
}

// Resolve returns the item code for a label. groupCode scopes duplicate
// labels and may be empty.
func (r *Resolver) Resolve(label, groupCode string) (string, bool) {
	key := Normalize(label)
	if groupCode != "" {
		if code, ok := r.scoped[groupCode][key]; ok {
			return code, true
		}
	}
	if code, ok := r.items[key]; ok {
		return code, true
	}
	code, ok := r.aliases[key]
	return code, ok
}

// ResolveGroup returns the group code for a section header label.
func (r *Resolver) ResolveGroup(label string) (string, bool) {
	code, ok := r.groups[Normalize(label)]
	return code, ok
}
