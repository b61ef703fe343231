// Copyright 2026 The OpenTrusty Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Config holds metrics configuration
type Config struct {
	Enabled     bool
	ServiceName string
}

// Meter wraps OpenTelemetry meter
type Meter struct {
	meter metric.Meter
}

// New creates a meter from the global meter provider, or a no-op meter when
// metrics are disabled.
func New(cfg Config) *Meter {
	if !cfg.Enabled {
		return NewWithMeter(noop.NewMeterProvider().Meter(cfg.ServiceName))
	}
	return NewWithMeter(otel.Meter(cfg.ServiceName))
}

// NewWithMeter wraps an existing meter.
func NewWithMeter(m metric.Meter) *Meter {
	return &Meter{meter: m}
}

// CreateCounter creates a new counter metric
func (m *Meter) CreateCounter(name, description string) (metric.Int64Counter, error) {
	counter, err := m.meter.Int64Counter(
		name,
		metric.WithDescription(description),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return counter, nil
}

// CreateHistogram creates a new histogram metric
func (m *Meter) CreateHistogram(name, description, unit string) (metric.Float64Histogram, error) {
	histogram, err := m.meter.Float64Histogram(
		name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram %s: %w", name, err)
	}
	return histogram, nil
}

// CreateUpDownCounter creates a new up/down counter metric
func (m *Meter) CreateUpDownCounter(name, description string) (metric.Int64UpDownCounter, error) {
	counter, err := m.meter.Int64UpDownCounter(
		name,
		metric.WithDescription(description),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create up/down counter %s: %w", name, err)
	}
	return counter, nil
}

// Instruments used by the discovery endpoints.
type Instruments struct {
	requests      metric.Int64Counter
	latency       metric.Float64Histogram
	publishedKeys metric.Int64UpDownCounter
}

// NewInstruments registers the discovery instruments on m.
func NewInstruments(m *Meter) (*Instruments, error) {
	requests, err := m.CreateCounter("oidc_discovery.http.requests", "Requests served, by matched route and status code")
	if err != nil {
		return nil, err
	}
	latency, err := m.CreateHistogram("oidc_discovery.http.duration", "Time spent serving a request", "ms")
	if err != nil {
		return nil, err
	}
	publishedKeys, err := m.CreateUpDownCounter("oidc_discovery.keys.published", "Keys listed in the published key set")
	if err != nil {
		return nil, err
	}
	return &Instruments{requests: requests, latency: latency, publishedKeys: publishedKeys}, nil
}

// RecordRequest counts one served request.
func (i *Instruments) RecordRequest(ctx context.Context, route string, status int, durationMS float64) {
	attrs := metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status_code", status),
	)
	i.requests.Add(ctx, 1, attrs)
	i.latency.Record(ctx, durationMS, attrs)
}

// RecordPublishedKeys records the size of the key set at startup.
func (i *Instruments) RecordPublishedKeys(ctx context.Context, n int) {
	i.publishedKeys.Add(ctx, int64(n))
}
