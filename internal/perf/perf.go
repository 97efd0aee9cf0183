// Package perf records lightweight performance markers for the current run.
package perf

import (
	"context"
	"fmt"
	"runtime/trace"
	"slices"
	"time"
)

type EntryType string

const (
	MarkType    EntryType = "MarkType"
	MeasureType EntryType = "MeasureType"
)

type Entry struct {
	Name      string        `json:"name"`
	Type      EntryType     `json:"type"`
	StartTime time.Time     `json:"start_time,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

type PerformanceLog []Entry

var perfLog = make(PerformanceLog, 0)

type PerformanceRegion struct {
	Region *trace.Region
	Marker *Entry
}

func (r *PerformanceRegion) End() {
	r.Region.End()
	startName := r.Marker.Name
	endName := fmt.Sprintf("%s-end", r.Marker.Name)
	Mark(endName)
	Measure(fmt.Sprintf("%s-duration", r.Marker.Name), startName, endName)
}

func ClearPerformanceLog() {
	perfLog = make(PerformanceLog, 0)
}

func GetPerformanceLog() PerformanceLog {
	return perfLog
}

func GetAllMeasurements() PerformanceLog {
	measurements := make(PerformanceLog, 0)
	for _, entry := range perfLog {
		if entry.Type == MeasureType {
			measurements = append(measurements, entry)
		}
	}
	return measurements
}

func StartRegion(marker string) *PerformanceRegion {
	region := trace.StartRegion(context.Background(), marker)
	markerEntry := Mark(marker)

	return &PerformanceRegion{
		Region: region,
		Marker: markerEntry,
	}
}

func Mark(marker string) *Entry {
	entry := Entry{
		Name:      marker,
		Type:      MarkType,
		StartTime: time.Now(),
	}
	perfLog = append(perfLog, entry)

	return &entry
}

func Measure(marker string, fromMarker string, toMarker string) {
	fromIdx := slices.IndexFunc(perfLog, func(e Entry) bool {
		return e.Name == fromMarker
	})
	if fromIdx == -1 {
		return
	}

	toIdx := slices.IndexFunc(perfLog, func(e Entry) bool {
		return e.Name == toMarker
	})
	if toIdx == -1 {
		return
	}

	perfLog = append(perfLog, Entry{
		Name:      marker,
		Type:      MeasureType,
		StartTime: perfLog[fromIdx].StartTime,
		Duration:  perfLog[toIdx].StartTime.Sub(perfLog[fromIdx].StartTime),
	})
}
