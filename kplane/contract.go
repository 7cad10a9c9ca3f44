// MODUL: contract
// ZWECK: Koordinaten-Normalisierung vor dem Encoding
// INPUT: Rohe 3-D Punktkoordinaten und eine achsenparallele Bounding-Box
// OUTPUT: Koordinaten im Wertebereich des Encoders
// NEBENEFFEKTE: Keine (Eingabe-Slice bleibt unveraendert)
// ABHAENGIGKEITEN: math (Standard-Library)
// HINWEISE: Die Unisphere-Kontraktion bildet unbeschraenkte Szenen auf
//           [0, 1] ab; Punkte ausserhalb der Einheitskugel werden auf
//           den Radius [1, 2) kontrahiert

package kplane

import "math"

// AABB ist eine achsenparallele Bounding-Box im 3-D Raum
type AABB struct {
	Min, Max [3]float32
}

// ContractToUnisphere normalisiert gepackte 3-D Punkte ([x0 y0 z0 x1 ...])
// relativ zur Bounding-Box. Ohne unbounded werden die Punkte linear auf
// [-1, 1] skaliert; mit unbounded wird zusaetzlich die Unisphere-
// Kontraktion angewendet und das Ergebnis liegt in [0, 1].
func ContractToUnisphere(pts []float32, bbox AABB, unbounded bool) []float32 {
	out := make([]float32, len(pts))

	for i := 0; i+2 < len(pts); i += 3 {
		var p [3]float32
		for j := 0; j < 3; j++ {
			// auf [0, 1] relativ zur Box skalieren
			span := bbox.Max[j] - bbox.Min[j]
			p[j] = (pts[i+j] - bbox.Min[j]) / span
		}

		if !unbounded {
			for j := 0; j < 3; j++ {
				out[i+j] = p[j]*2 - 1
			}
			continue
		}

		// Box liegt bei [-1, 1]
		for j := 0; j < 3; j++ {
			p[j] = p[j]*2 - 1
		}

		mag := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
		if mag > 1 {
			// Punkte ausserhalb der Einheitskugel kontrahieren
			scale := (2 - 1/mag) / mag
			for j := 0; j < 3; j++ {
				p[j] *= scale
			}
		}

		// [-inf, inf] liegt bei [0, 1]
		for j := 0; j < 3; j++ {
			out[i+j] = p[j]/4 + 0.5
		}
	}

	return out
}
