package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "patient_id\tgene_type\tstatus\trisk_level\tmutations\tmutation_rate\tidentity\tsignificance\thotspots\tcomplexity\tmotif_hits\tsource_file"

// MaxListedMutations caps per-position lists in wire output.
const MaxListedMutations = 20
