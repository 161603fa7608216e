/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package test

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pbs-auth/pbsauth/core"
)

// SampleField describes a field of a sampled record and the kinds of values it may hold.
// A kind prefixed with "ref." refers to another record type in the schema.
type SampleField struct {
	Key   string
	Kinds []string
}

// SampleSchema describes the records of an authentication response, as sent by the identity provider.
var SampleSchema = map[string][]SampleField{
	"auth": {
		{Key: "owner", Kinds: []string{"ref.owner"}},
		{Key: "token", Kinds: []string{"ref.token"}},
	},
	"owner": {
		{Key: "pid", Kinds: []string{"uuid"}},
		{Key: "first_name", Kinds: []string{"word"}},
		{Key: "last_name", Kinds: []string{"word"}},
		{Key: "email", Kinds: []string{"email"}},
		{Key: "zip_code", Kinds: []string{"zip", "empty"}},
		{Key: "analytics_id", Kinds: []string{"uuid", "null"}},
		{Key: "thumbnail_url", Kinds: []string{"url", "null"}},
		{Key: "vppa", Kinds: []string{"ref.vppa", "null"}},
	},
	"token": {
		{Key: "token_type", Kinds: []string{"word"}},
		{Key: "scope", Kinds: []string{"scope"}},
		{Key: "access_token", Kinds: []string{"uuid"}},
		{Key: "refresh_token", Kinds: []string{"uuid"}},
		{Key: "expires", Kinds: []string{"epoch"}},
	},
	"vppa": {
		{Key: "vppa_accepted", Kinds: []string{"bool", "null"}},
		{Key: "vppa_last_updated", Kinds: []string{"date", "rfc3339", "null"}},
	},
}

var words = []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliet", "kilo", "lima"}

// Sampler generates random records that conform to SampleSchema.
type Sampler struct {
	rand *rand.Rand
}

// NewSampler creates a Sampler. Samplers created with the same seed generate the same records,
// apart from the generated UUIDs.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rand: rand.New(rand.NewSource(seed))}
}

// Sample generates a record of the given type ("auth", "owner", "token" or "vppa").
func (s *Sampler) Sample(recordType string) map[string]interface{} {
	fields, ok := SampleSchema[recordType]
	if !ok {
		panic(fmt.Sprintf("unknown record type: %s", recordType))
	}
	result := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		kind := field.Kinds[s.rand.Intn(len(field.Kinds))]
		if ref, isRef := strings.CutPrefix(kind, "ref."); isRef {
			result[field.Key] = s.Sample(ref)
			continue
		}
		result[field.Key] = s.value(kind)
	}
	return result
}

func (s *Sampler) value(kind string) interface{} {
	switch kind {
	case "word":
		return s.word()
	case "empty":
		return ""
	case "null":
		return nil
	case "uuid":
		return uuid.NewString()
	case "email":
		return fmt.Sprintf("%s.%s@example.com", s.word(), s.word())
	case "zip":
		return fmt.Sprintf("%05d", s.rand.Intn(100000))
	case "url":
		return fmt.Sprintf("https://images.example.com/%s/%s.png", s.word(), uuid.NewString())
	case "scope":
		scopes := make([]string, s.rand.Intn(4))
		for i := range scopes {
			scopes[i] = s.word()
		}
		return strings.Join(scopes, " ")
	case "epoch":
		return int64(1_500_000_000 + s.rand.Intn(500_000_000))
	case "bool":
		return s.rand.Intn(2) == 1
	case "date":
		return s.time().Format(core.TimestampLayout)
	case "rfc3339":
		return s.time().Format(time.RFC3339Nano)
	default:
		panic(fmt.Sprintf("unknown value kind: %s", kind))
	}
}

func (s *Sampler) word() string {
	return words[s.rand.Intn(len(words))]
}

func (s *Sampler) time() time.Time {
	offset := (s.rand.Intn(27) - 12) * 60 * 60
	return time.Unix(int64(1_000_000_000+s.rand.Intn(1_000_000_000)), int64(s.rand.Intn(1_000_000_000))).
		In(time.FixedZone("", offset))
}
