// Package effects isolates the side effects of the partitions tool, logging
// and configuration lookup, behind handlers bound into a context.Context.
//
// The numeric packages (sequence, memo, partition) stay pure. Code that needs
// to log or read configuration performs an effect, and whichever handler the
// caller installed in the context handles it.
//
// Handlers are registered with a WithXxxEffectHandler function, which returns
// the derived context and a teardown. Effects are performed with
// PerformResumableEffect (a result comes back on a channel) or
// FireAndForgetEffect (nothing comes back). Performing an effect with no
// handler installed panics with ErrNoEffectHandler.
//
// Built-in handlers live in the log and binding subpackages.
//
// Example:
//
//	func run(ctx context.Context) {
//	    ctx, endOfLog := log.WithZapEffectHandler(ctx, 10, zap.NewExample())
//	    defer endOfLog()
//
//	    log.Effect(ctx, log.LogInfo, "started", nil)
//	}
package effects
