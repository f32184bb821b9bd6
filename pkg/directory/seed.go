package directory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/churchconnect/edge/pkg/slug"
	"github.com/churchconnect/edge/pkg/tenant"
)

// seedFile is the YAML layout of a tenant seed:
//
//	churches:
//	  - name: St Mary's
//	    slug: stmarys        # optional, derived from name
//	    email: office@stmarys.org.uk
//	    is_active: true
type seedFile struct {
	Churches []tenant.Tenant `yaml:"churches"`
}

// LoadSeedFile reads a YAML seed from path.
func LoadSeedFile(path string) ([]tenant.Tenant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadSeed, err)
	}
	defer f.Close()

	return LoadSeed(f)
}

// LoadSeed decodes and validates a YAML seed. Missing slugs are derived from
// the church name, missing IDs are generated and a missing subscription
// status defaults to trial.
func LoadSeed(r io.Reader) ([]tenant.Tenant, error) {
	var file seedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidSeed, err)
	}

	now := time.Now().UTC()
	seen := make(map[string]struct{}, len(file.Churches))
	out := make([]tenant.Tenant, 0, len(file.Churches))

	for i, t := range file.Churches {
		if t.Slug == "" {
			t.Slug = slug.Make(t.Name)
		}
		if !slug.Valid(t.Slug) {
			return nil, errors.Join(ErrInvalidSeed, fmt.Errorf("church %d: invalid slug %q", i, t.Slug))
		}
		if _, dup := seen[t.Slug]; dup {
			return nil, errors.Join(ErrDuplicateSlug, fmt.Errorf("slug %q", t.Slug))
		}
		seen[t.Slug] = struct{}{}

		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.SubscriptionStatus == "" {
			t.SubscriptionStatus = tenant.SubscriptionTrial
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = t.CreatedAt
		}
		out = append(out, t)
	}

	return out, nil
}
