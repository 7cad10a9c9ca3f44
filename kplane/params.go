// MODUL: params
// ZWECK: Export der lernbaren Plane-Parameter fuer externe Optimierer
// INPUT: KPlane Instanz
// OUTPUT: Geordnete Pfad-zu-Tensor Zuordnung bzw. Parametergruppen
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: github.com/wk8/go-ordered-map/v2 (extern)
// HINWEISE: Es werden Referenzen exportiert, keine Kopien - externe
//           Updates via FromFloats wirken in-place auf die Planes

package kplane

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/7blacky7/kplane/ml"
)

// FieldGroup ist der Gruppenschluessel, unter dem alle Plane-Parameter
// exportiert werden
const FieldGroup = "field"

// NamedParams gibt alle Plane-Parameter als geordnete Zuordnung von
// Parameter-Pfad zu Tensor-Referenz zurueck, Scale-major und innerhalb
// einer Scale in Kombinations-Reihenfolge.
func (k *KPlane) NamedParams() *orderedmap.OrderedMap[string, ml.Tensor] {
	params := orderedmap.New[string, ml.Tensor]()
	for si, planes := range k.scales {
		for ci, plane := range planes {
			params.Set(fmt.Sprintf("grids.%d.%d", si, ci), plane)
		}
	}
	return params
}

// Params gruppiert alle Plane-Parameter unter dem "field"-Schluessel,
// in der Reihenfolge von NamedParams.
func (k *KPlane) Params() map[string][]ml.Tensor {
	named := k.NamedParams()
	field := make([]ml.Tensor, 0, named.Len())
	for pair := named.Oldest(); pair != nil; pair = pair.Next() {
		field = append(field, pair.Value)
	}
	return map[string][]ml.Tensor{FieldGroup: field}
}
