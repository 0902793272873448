// Copyright 2026 The LabRAD-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package labrad

import (
	"io"

	"github.com/labrad-go/core/internal/bytesio"
	"github.com/labrad-go/core/internal/trace"
)

// Packet is the framed unit instruments and managers exchange: a context,
// a target, a request number, and zero or more Records.
type Packet struct {
	Context Context
	Target  uint32
	Request int32
	Records []Record
}

// NewPacket constructs a Packet.
func NewPacket(ctx Context, target uint32, request int32, records ...Record) Packet {
	return Packet{Context: ctx, Target: target, Request: request, Records: append([]Record(nil), records...)}
}

// flusher is implemented by buffered writers (e.g. *bufio.Writer) that
// need an explicit Flush to push bytes onto the wire. WriteTo flushes
// after every packet so latency is bounded regardless of what buffering
// the caller layered underneath.
type flusher interface {
	Flush() error
}

// WriteTo writes p's wire encoding to w: a 20-byte header (context, request,
// target, and the byte length of the record section) followed by each
// record's id, ISO-8859-1 type tag, and flattened payload, in order. It
// implements io.WriterTo.
func (p Packet) WriteTo(w io.Writer) (int64, error) {
	trace.Log("packet.write", "target=%d request=%d records=%d", p.Target, p.Request, len(p.Records))

	var body []byte
	for _, rec := range p.Records {
		var err error
		body, err = appendRecord(body, rec)
		if err != nil {
			return 0, err
		}
	}

	var header [20]byte
	_ = bytesio.WriteUint32(header[:], 0, p.Context.High)
	_ = bytesio.WriteUint32(header[:], 4, p.Context.Low)
	_ = bytesio.WriteInt32(header[:], 8, p.Request)
	_ = bytesio.WriteUint32(header[:], 12, p.Target)
	_ = bytesio.WriteUint32(header[:], 16, uint32(len(body)))

	n1, err := w.Write(header[:])
	if err != nil {
		return int64(n1), err
	}
	n2, err := w.Write(body)
	total := int64(n1 + n2)
	if err != nil {
		return total, err
	}

	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return total, err
		}
	}
	return total, nil
}

func appendRecord(buf []byte, rec Record) ([]byte, error) {
	var idBuf [4]byte
	_ = bytesio.WriteUint32(idBuf[:], 0, rec.ID)
	buf = append(buf, idBuf[:]...)

	tag := rec.Data.Type().Tag()
	var tagLenBuf [4]byte
	_ = bytesio.WriteUint32(tagLenBuf[:], 0, uint32(len(tag)))
	buf = append(buf, tagLenBuf[:]...)
	buf = append(buf, tag...)

	payload, err := rec.Data.Flatten()
	if err != nil {
		return nil, err
	}
	var payloadLenBuf [4]byte
	_ = bytesio.WriteUint32(payloadLenBuf[:], 0, uint32(len(payload)))
	buf = append(buf, payloadLenBuf[:]...)
	buf = append(buf, payload...)

	return buf, nil
}

// ReadFrom reads a Packet's wire encoding from r, replacing p's contents.
// It implements io.ReaderFrom. Record payloads are parsed using the type
// tag carried alongside each one, so the caller does not need to know a
// packet's shape in advance.
func (p *Packet) ReadFrom(r io.Reader) (int64, error) {
	var header [20]byte
	n, err := io.ReadFull(r, header[:])
	total := int64(n)
	if err != nil {
		return total, &CodecError{Reason: "reading packet header", Err: err}
	}

	high, _ := bytesio.ReadUint32(header[:], 0)
	low, _ := bytesio.ReadUint32(header[:], 4)
	request, _ := bytesio.ReadInt32(header[:], 8)
	target, _ := bytesio.ReadUint32(header[:], 12)
	recordsLen, _ := bytesio.ReadUint32(header[:], 16)

	body := make([]byte, recordsLen)
	m, err := io.ReadFull(r, body)
	total += int64(m)
	if err != nil {
		return total, &CodecError{Reason: "reading packet record body", Err: err}
	}

	records, err := parseRecords(body)
	if err != nil {
		return total, err
	}

	p.Context = Context{High: high, Low: low}
	p.Target = target
	p.Request = request
	p.Records = records

	trace.Log("packet.read", "target=%d request=%d records=%d", target, request, len(records))
	return total, nil
}

func parseRecords(body []byte) ([]Record, error) {
	var records []Record
	off := 0
	for off < len(body) {
		if off+4 > len(body) {
			return nil, &CodecError{Offset: off, Reason: "truncated record id"}
		}
		id, _ := bytesio.ReadUint32(body, off)
		off += 4

		if off+4 > len(body) {
			return nil, &CodecError{Offset: off, Reason: "truncated record tag length"}
		}
		tagLen, _ := bytesio.ReadUint32(body, off)
		off += 4

		if off+int(tagLen) > len(body) {
			return nil, &CodecError{Offset: off, Reason: "truncated record tag"}
		}
		tag := string(body[off : off+int(tagLen)])
		off += int(tagLen)

		t, err := Parse(tag)
		if err != nil {
			return nil, &CodecError{Offset: off, Reason: "parsing record type tag", Err: err}
		}

		if off+4 > len(body) {
			return nil, &CodecError{Offset: off, Reason: "truncated record payload length"}
		}
		payloadLen, _ := bytesio.ReadUint32(body, off)
		off += 4

		if off+int(payloadLen) > len(body) {
			return nil, &CodecError{Offset: off, Reason: "truncated record payload"}
		}
		payload := body[off : off+int(payloadLen)]
		off += int(payloadLen)

		br := byteReader(payload)
		data, err := Unflatten(&br, t)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{ID: id, Data: data})
	}
	return records, nil
}

// byteReader adapts a byte slice to io.Reader without pulling in
// bytes.Reader's extra seeking/unreading surface, which Unflatten never
// needs.
type byteReader []byte

func (b *byteReader) Read(p []byte) (int, error) {
	if len(*b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, *b)
	*b = (*b)[n:]
	return n, nil
}
