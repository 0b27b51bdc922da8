// Package scraper provides driven.RegulationSource implementations that
// search Turkish regulation websites and parse their result listings.
//
// mevzuat.gov.tr and resmigazete.gov.tr are scraped over HTTP. GİB and
// Mevbank have no public search endpoint and are served by placeholders
// that always report no matches.
package scraper
