package tracing

import (
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

var GlobalTracer = otel.Tracer("costaverde-backend")

// HoneycombSetup configures the OpenTelemetry SDK via the honeycomb distro.
// The returned shutdown func is a no-op when tracing is disabled.
func HoneycombSetup(tracingEnabled bool, serviceName string, rdb *redis.Client) (func(), error) {
	if !tracingEnabled {
		log.Debugln("tracing disabled, skipping otel setup")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	log.Debugln("otel tracing set up")
	return otelShutdown, nil
}
