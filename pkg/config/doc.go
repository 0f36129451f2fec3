// Package config defines the resolved device configuration record and the
// display metrics derived from it.
//
// # Packed Fields
//
// The enum types use the platform's numeric values, so collaborators that
// initialize simulated platform objects can read the packed forms directly:
//
//	screenLayout := cfg.ScreenLayout() // size | long | layoutdir | round
//	uiMode := cfg.UIMode()             // type | night
//
// Each dimension occupies its own mask, so at most one value per dimension
// is ever active in a packed field.
//
// # Display Metrics
//
// DisplayMetrics is derived from the requested density bucket and is not
// authored independently. At API levels at or below Jelly Bean the
// Configuration record leaves DensityDpi at 0 while DisplayMetrics still
// carries the requested density.
package config
