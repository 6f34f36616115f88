package cmd

type Config struct {
	HTTPPort           string
	DataDir            string
	SnapshotAllowEmpty bool
}
