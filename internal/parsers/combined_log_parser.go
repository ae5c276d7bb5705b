package parsers

import (
	"regexp"
	"strings"
	"time"

	"hotpath-analytics/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mileusna/useragent"
)

// timestampLayout matches the bracketed time of the combined log format,
// e.g. [10/May/2021:12:01:56 +0800]. The zone offset is part of the line, so
// event time never depends on the host zone.
const timestampLayout = "02/Jan/2006:15:04:05 -0700"

const uaFamilyCacheSize = 1024

// combinedLogPattern captures clientIP, identity, user, timestamp, request
// line, status, body bytes and the optional referer/user-agent pair.
var combinedLogPattern = regexp.MustCompile(
	`^(\S+) (\S+) (\S+) \[([^\]]+)\] "([^"]*)" (\d{3}) (\d+|-)(?: "([^"]*)" "([^"]*)")?\s*$`)

//go:generate mockgen -source=combined_log_parser.go -destination=./mocks/combined_log_parser_mock.go -package=mocks
type AccessLogParser interface {
	// Parse turns one access-log line into a record. Lines that do not parse
	// return an error and never enter the stream.
	Parse(line string) (*models.AccessRecord, error)
}

type combinedLogParser struct {
	uaFamilies *lru.Cache[string, string]
}

func NewCombinedLogParser() (AccessLogParser, error) {
	cache, err := lru.New[string, string](uaFamilyCacheSize)
	if err != nil {
		return nil, err
	}
	return &combinedLogParser{uaFamilies: cache}, nil
}

func (p *combinedLogParser) Parse(line string) (*models.AccessRecord, error) {
	m := combinedLogPattern.FindStringSubmatch(line)
	if m == nil {
		metricRejectedLinesTotal.WithLabelValues(rejectReasonPattern).Inc()
		return nil, errLineNotCombinedFormat()
	}

	eventTime, err := time.Parse(timestampLayout, m[4])
	if err != nil {
		metricRejectedLinesTotal.WithLabelValues(rejectReasonTimestamp).Inc()
		return nil, errBadTimestamp(err)
	}

	path, ok := requestPath(m[5])
	if !ok {
		metricRejectedLinesTotal.WithLabelValues(rejectReasonRequestLine).Inc()
		return nil, errBadRequestLine(m[5])
	}

	record := &models.AccessRecord{
		ClientIP:    m[1],
		EventTime:   eventTime,
		RequestPath: path,
		StatusCode:  m[6],
		BodyBytes:   m[7],
		Referer:     m[8],
		UserAgent:   m[9],
	}

	metricParsedLinesTotal.WithLabelValues().Inc()
	metricParsedUserAgentsTotal.WithLabelValues(p.browserFamily(record.UserAgent)).Inc()

	return record, nil
}

// requestPath extracts the URL path out of a request line like
// "GET /index.html HTTP/1.1".
func requestPath(requestLine string) (string, bool) {
	fields := strings.Fields(requestLine)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

// browserFamily normalizes a raw user-agent string into its browser family.
// Lookups go through a bounded cache since agents repeat heavily within one
// log. The family feeds a metrics label only.
func (p *combinedLogParser) browserFamily(ua string) string {
	if family, ok := p.uaFamilies.Get(ua); ok {
		return family
	}

	family := useragent.Parse(ua).Name
	if family == "" {
		family = "other"
	}
	p.uaFamilies.Add(ua, family)
	return family
}
