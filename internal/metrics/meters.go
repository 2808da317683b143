package metrics

// Meters recorded by the read pipeline and the subcommands.
var (
	ReadsTotal     = LazyLoadCounterVec("reads_total", []string{"cmd"})
	SMEMsTotal     = LazyLoadCounter("smems_total")
	RegionsTotal   = LazyLoadCounter("regions_total")
	PrimaryHits    = LazyLoadCounter("primary_hits_total")
	AltResolved    = LazyLoadCounter("xa_resolved_total")
	AltAdmitted    = LazyLoadCounter("xa_admitted_total")
	ReadDurationUS = LazyLoadHistogram("read_duration_us", BucketReadMicros)
	ActiveWorkers  = LazyLoadGauge("active_workers")
)
