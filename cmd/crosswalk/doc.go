// Command crosswalk cross-references streaming catalogs against musical
// works registries and produces publishing-opportunity reports.
package main
