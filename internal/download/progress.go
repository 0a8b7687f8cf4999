package download

// ProgressStatus is the kind of a progress event
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
	ProgressError       ProgressStatus = "error"
)

// Progress is a single progress event from the extractor
type Progress struct {
	Status          ProgressStatus
	DownloadedBytes int64
	TotalBytes      int64   // exact or estimated, 0 if unknown
	Speed           float64 // bytes per second, 0 if unknown
	Filename        string  // set on finished events
}

// Percent returns downloaded/total*100 in [0,100], or 0 when the total is unknown
func (p Progress) Percent() float64 {
	if p.TotalBytes <= 0 {
		return 0
	}
	percent := float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
