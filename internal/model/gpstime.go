package model

import "time"

// gpsEpoch is the start of the GPS time scale: 1980-01-06T00:00:00 UTC.
var gpsEpoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

// leapSeconds lists the GPS times (in seconds since gpsEpoch) at which a
// leap second was inserted into UTC. GPS time does not observe leap
// seconds, so each entry increases the GPS-UTC offset by one second.
// The table is complete through the 2017-01-01 leap second; no further
// leap seconds have been announced since.
var leapSeconds = []int64{
	46828800,   // 1981-07-01
	78364801,   // 1982-07-01
	109900802,  // 1983-07-01
	173059203,  // 1985-07-01
	252028804,  // 1988-01-01
	315187205,  // 1990-01-01
	346723206,  // 1991-01-01
	393984007,  // 1992-07-01
	425520008,  // 1993-07-01
	457056009,  // 1994-07-01
	504489610,  // 1996-01-01
	551750411,  // 1997-07-01
	599184012,  // 1999-01-01
	820108813,  // 2006-01-01
	914803214,  // 2009-01-01
	1025136015, // 2012-07-01
	1119744016, // 2015-07-01
	1167264017, // 2017-01-01
}

// GPSToUTC converts a GPS time in seconds to the corresponding UTC time.
// Fractional seconds are preserved to nanosecond precision.
func GPSToUTC(gps float64) time.Time {
	sec := int64(gps)
	frac := gps - float64(sec)

	var offset int64
	for _, leap := range leapSeconds {
		if sec >= leap {
			offset++
		}
	}

	utc := gpsEpoch.Add(time.Duration(sec-offset) * time.Second)
	if frac > 0 {
		utc = utc.Add(time.Duration(frac * float64(time.Second)))
	}
	return utc
}
