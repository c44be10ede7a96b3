package probemap

type Stats struct {
	Size                    int
	Tombstones              int
	Fill                    int
	Slots                   int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
