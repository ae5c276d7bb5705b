package models

import "time"

type AccessRecord struct {
	ClientIP    string
	EventTime   time.Time
	RequestPath string
	StatusCode  string
	BodyBytes   string
	Referer     string
	UserAgent   string
}
