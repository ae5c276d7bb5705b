package models

import "time"

// RankedReport holds the hottest request paths of one closed window, ordered by
// descending request count. Entries has at most the configured top size; windows
// with fewer distinct paths produce fewer entries. Paths with equal counts have
// no defined relative order.
//
// Example JSON:
//
//	{
//	  "windowEnd": "2025-12-28T18:03:10Z",
//	  "entries": [
//	    {"requestPath": "/", "count": 150},
//	    {"requestPath": "/about", "count": 50},
//	    {"requestPath": "/careers", "count": 30}
//	  ]
//	}
type RankedReport struct {
	WindowEnd time.Time     `json:"windowEnd"`
	Entries   []ReportEntry `json:"entries"`
}

type ReportEntry struct {
	RequestPath string `json:"requestPath"`
	Count       int64  `json:"count"`
}
