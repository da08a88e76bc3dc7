// Package forecastengine implements the financial normalization and
// forecasting engine inside the finance-core context.
//
// The module owns workspace assembly (normalizing loosely-typed stored
// records into canonical collections), baseline and scenario projection,
// goal and envelope forecasting, fragility scoring, and the planning write
// paths (versions, goal events, envelopes, finance states). Month-close
// snapshots and envelope rollover run as scheduled workers; domain events
// leave through an outbox relay. Business rules live in the domain and
// application layers behind ports, with memory and postgres adapters.
package forecastengine
