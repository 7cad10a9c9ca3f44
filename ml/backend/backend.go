// backend.go - Registrierung aller verfuegbaren Backends
// Dieses Modul importiert die Backend-Implementierungen, damit sie sich
// beim ml-Paket registrieren.
package backend

import (
	_ "github.com/7blacky7/kplane/ml/backend/cpu"
)
