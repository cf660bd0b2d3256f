package zones

import "github.com/arl/go-seqarrange/model"

// GlueLowObjects implements spec.md §4.1's glue-low-objects rule in
// place: walking the preprocessed objects once in caller order, an object
// is "low" when twice its footprint area exceeds its unreachable-zone
// area. Whenever two or more consecutive objects are low, the earlier of
// each consecutive pair gets GluedToNext forced on, biasing the scheduler
// to pack low objects into the same bed batch.
func GlueLowObjects(objs []model.SolvableObject) {
	for i := 0; i < len(objs)-1; i++ {
		if isLow(objs[i]) && isLow(objs[i+1]) {
			objs[i].GluedToNext = true
		}
	}
}

func isLow(o model.SolvableObject) bool {
	return 2*o.Polygon.Area() > o.UnreachableArea()
}
