package trace

import "go.uber.org/zap"

// zapTracer logs every lifecycle event at Debug level.
type zapTracer struct {
	log *zap.Logger
}

// NewZapTracer returns a Tracer that writes structured events to log.
// A nil logger yields the no-op tracer.
func NewZapTracer(log *zap.Logger) Tracer {
	if log == nil {
		return Nop()
	}

	return &zapTracer{log: log}
}

func (z *zapTracer) Alloc(kind Kind, id uint64) {
	z.log.Debug("value allocated",
		zap.Stringer("kind", kind),
		zap.Uint64("id", id))
}

func (z *zapTracer) Retain(id uint64, count int64) {
	z.log.Debug("handle retained",
		zap.Uint64("id", id),
		zap.Int64("use_count", count))
}

func (z *zapTracer) Release(id uint64, count int64) {
	z.log.Debug("handle released",
		zap.Uint64("id", id),
		zap.Int64("use_count", count))
}

func (z *zapTracer) Free(id uint64) {
	z.log.Debug("value freed", zap.Uint64("id", id))
}

func (z *zapTracer) CastHit(id uint64) {
	z.log.Debug("cast succeeded", zap.Uint64("id", id))
}

func (z *zapTracer) CastMiss(id uint64) {
	z.log.Debug("downcast rejected", zap.Uint64("id", id))
}
