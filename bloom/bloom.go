// Package bloom implements split-block bloom filters keyed by CityHash
// fingerprints.
//
// The filters are useful to deduplicate large streams of keys with a bounded
// amount of memory: a key which was never inserted is reported as absent with
// certainty, while a key which was inserted is always reported as possibly
// present.
//
// The block layout and probing scheme are those of the parquet split-block
// bloom filters, which makes the serialized form (SplitBlockFilter.Bytes)
// compatible with readers of that format when the keys are hashed the same way.
package bloom
