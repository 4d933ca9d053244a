package metrics

import (
	rtmetrics "runtime/metrics"
)

type MemoryProbe interface {
	Usage() MemoryUsage
}

type ProbeFunc func() MemoryUsage

func (f ProbeFunc) Usage() MemoryUsage { return f() }

const (
	sampleTotal       = "/memory/classes/total:bytes"
	sampleHeapObjects = "/memory/classes/heap/objects:bytes"
	sampleHeapUnused  = "/memory/classes/heap/unused:bytes"
	sampleHeapFree    = "/memory/classes/heap/free:bytes"
	sampleHeapStacks  = "/memory/classes/heap/stacks:bytes"
	sampleOSStacks    = "/memory/classes/os-stacks:bytes"
	sampleOther       = "/memory/classes/other:bytes"
)

var runtimeSampleNames = []string{
	sampleTotal,
	sampleHeapObjects,
	sampleHeapUnused,
	sampleHeapFree,
	sampleHeapStacks,
	sampleOSStacks,
	sampleOther,
}

// RuntimeProbe reads memory classes from runtime/metrics, which does not
// stop the world.
type RuntimeProbe struct{}

func NewRuntimeProbe() RuntimeProbe {
	return RuntimeProbe{}
}

func (RuntimeProbe) Usage() MemoryUsage {
	samples := make([]rtmetrics.Sample, len(runtimeSampleNames))
	for i, name := range runtimeSampleNames {
		samples[i].Name = name
	}
	rtmetrics.Read(samples)

	values := make(map[string]uint64, len(samples))
	for _, s := range samples {
		if s.Value.Kind() == rtmetrics.KindUint64 {
			values[s.Name] = s.Value.Uint64()
		}
	}

	return MemoryUsage{
		Resident:  values[sampleTotal],
		HeapUsed:  values[sampleHeapObjects],
		HeapTotal: values[sampleHeapObjects] + values[sampleHeapUnused] + values[sampleHeapFree],
		External:  values[sampleHeapStacks] + values[sampleOSStacks] + values[sampleOther],
	}
}
