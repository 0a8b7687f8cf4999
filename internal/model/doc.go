package model

// Package model defines the domain values shared by the batch controller, the
// download worker and the UI: queue items, batch phases and per-item results.
// Values here carry no behaviour beyond small derived accessors.
