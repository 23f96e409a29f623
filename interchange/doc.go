// Package interchange implements the interchange orchestrator (component
// I): splitting a flat segment stream at UNH/UNT boundaries into an
// envelope plus per-message chunks, then driving the assembler and
// mapping engine across both the message scope and its transaction
// subgroup for forward conversion, and the mapping engine, assembler's
// tree shape, disassembler, and encoder in reverse for reconstruction.
package interchange
