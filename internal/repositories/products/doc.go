// Package products persists one user's catalog as a JSON array in
// <data_dir>/products/products.<username>.json.
//
// A missing file is an empty catalog. A file that does not decode, or that
// holds records no catalog could have produced (bad ids, duplicate ids or
// names, negative values), is reported as common.ErrStorageCorruption so
// the caller can decide how to recover.
package products
