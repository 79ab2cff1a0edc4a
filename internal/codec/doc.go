// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec frames server-to-client messages on the wire and reads
// client-to-server command lines.
//
// A frame is a single `{"code":"<CODE>","msg":"<text>"}` JSON object (see
// [models.Envelope]); each call to [WriteFrame] writes exactly one frame and
// flushes it. Client input is read as a best-effort buffered chunk of at most
// [BufferSize] bytes and returned with surrounding whitespace stripped.
package codec
