// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: constructor validation, a carrier
// adapter call, then persistence through the consignment repository.
package commands
