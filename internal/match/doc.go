// Package match implements the matching strategy pipeline that links
// recordings to candidate compositions.
//
// For each recording the pipeline runs two strategies against every
// configured provider, in order: an exact lookup by industry recording code
// (fixed high confidence) and a normalized-title similarity search
// (confidence scaled by the similarity and capped below code matches). Both
// strategies always run; their links coexist in the recording's result list
// and are only deduplicated later during aggregation.
//
// Provider failures degrade the affected recording to zero links with a
// diagnostic note and never abort the batch. Policy holds the thresholds and
// confidence constants; invalid policy values refuse to run.
package match
