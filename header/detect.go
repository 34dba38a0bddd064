// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import "go.astrophena.name/licenser/license"

// Marker returns the text approximate detection searches for in files
// commented with style.
func Marker(style Style) string { return style.Prefix + " " + Keyword }

// DetectApprox reports whether content most likely carries a license header
// already, by looking for [Marker] of style anywhere in it.
func DetectApprox(content []byte, style Style) bool {
	return Contains(string(content), Marker(style))
}

// Detection is the result of [DetectExact].
type Detection struct {
	// Found is true if any kind matched.
	Found bool
	// Kinds holds an entry for every kind checked.
	Kinds map[license.Kind]bool
}

// Matched returns the kinds that were found, in [license.Kinds] order.
func (d Detection) Matched() []license.Kind {
	var ks []license.Kind
	for _, k := range license.Kinds() {
		if d.Kinds[k] {
			ks = append(ks, k)
		}
	}
	return ks
}

// DetectExact formats the header of every kind in store with p and style and
// reports which of them content already contains.
func DetectExact(content []byte, store *license.Store, p license.Params, style Style) (Detection, error) {
	s := string(content)
	d := Detection{Kinds: make(map[license.Kind]bool)}
	for _, k := range store.Kinds() {
		hdr, err := Build(store, k, p, style)
		if err != nil {
			return Detection{}, err
		}
		found := Contains(s, hdr)
		d.Kinds[k] = found
		d.Found = d.Found || found
	}
	return d, nil
}
