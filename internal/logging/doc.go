// Package logging builds the zerolog loggers used by the commands. Loggers
// travel in context.Context; library code reads them with zerolog.Ctx.
package logging
