// Package sharefile persists shares as self-describing JSON records.
//
// A record carries the set identifier, its index, the threshold and total of the
// split and the share bytes as hex:
//
//	{"version":1,"set":"<uuid>","index":2,"threshold":3,"total":5,"value":"<hex>"}
//
// A file holds either one record or an array of records. Files are read as JSONC,
// so custodians may annotate them with comments.
package sharefile
