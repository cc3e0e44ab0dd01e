package jwsalg

import (
	"crypto"
	"sync/atomic"

	"github.com/VictoriaMetrics/metrics"
	"go.uber.org/zap"
)

// Factory maps an algorithm name and key material to a Primitive.
//
// A Factory is safe for concurrent use. The zero value is not usable,
// create one with NewFactory.
type Factory struct {
	logger       atomic.Pointer[zap.Logger]
	metrics      *factoryMetrics
	cache        *keyCache
	generateOpts []GenerateOption
}

// FactoryOption configures a Factory.
type FactoryOption func(*factoryConfig)

type factoryConfig struct {
	logger       *zap.Logger
	metricsSet   *metrics.Set
	keyCache     bool
	generateOpts []GenerateOption
}

// WithLogger sets the logger parse and generation failures are reported to.
// The default logger discards everything.
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(c *factoryConfig) {
		c.logger = logger
	}
}

// WithMetricsSet registers the factory counters on set
// instead of the global metrics set.
func WithMetricsSet(set *metrics.Set) FactoryOption {
	return func(c *factoryConfig) {
		c.metricsSet = set
	}
}

// WithKeyCache enables memoization of parsed public keys by key material.
// Cached keys are kept for the lifetime of the Factory.
func WithKeyCache(enabled bool) FactoryOption {
	return func(c *factoryConfig) {
		c.keyCache = enabled
	}
}

// WithGenerateOptions sets the options GenerateKeyMaterial passes to GenerateKey.
func WithGenerateOptions(opts ...GenerateOption) FactoryOption {
	return func(c *factoryConfig) {
		c.generateOpts = append(c.generateOpts, opts...)
	}
}

// NewFactory returns a new Factory.
func NewFactory(opts ...FactoryOption) *Factory {
	var cfg factoryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Factory{
		metrics:      newFactoryMetrics(cfg.metricsSet),
		generateOpts: cfg.generateOpts,
	}
	f.setLogger(cfg.logger)
	if cfg.keyCache {
		f.cache = &keyCache{}
	}

	return f
}

// binders is the dispatch table of Resolve, one entry per family.
// Every registered descriptor resolves through exactly one of them.
var binders = map[Family]func(f *Factory, desc Descriptor, material string) *Primitive{
	FamilyNone: func(_ *Factory, _ Descriptor, _ string) *Primitive {
		return nonePrimitive
	},
	FamilySymmetric: func(_ *Factory, desc Descriptor, material string) *Primitive {
		if material == "" {
			return newPrimitive(desc, nil, nil, ErrMissingKey)
		}
		secret := SecretFromString(material)
		return newPrimitive(desc, secret, secret, nil)
	},
	FamilyRSA: (*Factory).bindPublicKey,
	FamilyEC:  (*Factory).bindPublicKey,
}

// Resolve returns the primitive for the named algorithm bound to material.
//
// For HMAC algorithms material is the shared secret and must not be empty.
// For RSA and EC algorithms it is a public key, see ParsePublicKey. Unknown names and
// "none" resolve to the unsigned primitive.
//
// Resolve never fails: key material that cannot be used yields a primitive
// whose Check always reports Unverifiable, and the failure is logged.
func (f *Factory) Resolve(name, material string) *Primitive {
	desc, ok := Lookup(name)
	if !ok {
		f.logger.Load().Debug("unsupported algorithm, resolving to none", zap.String("alg", name))
		desc = catalog[0]
	}

	f.metrics.resolveTotal[desc.Family].Inc()
	return binders[desc.Family](f, desc, material)
}

func (f *Factory) bindPublicKey(desc Descriptor, material string) *Primitive {
	key, err := f.parsePublicKey(material, desc.Family)
	if err != nil {
		// cached errors are shared, annotate a copy.
		if keyErr, ok := err.(*KeyError); ok && keyErr.Alg == "" {
			annotated := *keyErr
			annotated.Alg = desc.Name
			err = &annotated
		}
		f.metrics.keyParseErrors.Inc()
		f.logger.Load().Warn("cannot parse public key",
			zap.String("alg", desc.Name),
			zap.Stringer("family", desc.Family),
			zap.Error(err))
		return newPrimitive(desc, nil, nil, err)
	}
	if key == nil {
		return newPrimitive(desc, nil, nil, ErrMissingKey)
	}

	return newPrimitive(desc, nil, key, nil)
}

func (f *Factory) parsePublicKey(material string, family Family) (crypto.PublicKey, error) {
	if f.cache == nil {
		return ParsePublicKey(material, family)
	}

	e, hit := f.cache.parse(material, family)
	if hit {
		f.metrics.keyCacheHits.Inc()
	}
	return e.key, e.err
}

// GenerateKeyMaterial returns a fresh secret for symmetric algorithms and
// the base64 PKCS#8 private key for RSA and EC algorithms. The public half
// is not returned, see DerivePublicKeyPEM. Other names and generation
// failures return an empty string; failures are logged.
func (f *Factory) GenerateKeyMaterial(name string) string {
	key, err := GenerateKey(name, f.generateOpts...)
	if err != nil {
		if LookupFamily(name) != FamilyNone {
			f.metrics.keyGenerationErrors.Inc()
			f.logger.Load().Error("cannot generate key material", zap.String("alg", name), zap.Error(err))
		}
		return ""
	}

	return key.Material()
}

var defaultFactory = NewFactory()

func (f *Factory) setLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f.logger.Store(logger)
}

// SetLogger replaces the logger of the package-level Resolve and
// GenerateKeyMaterial. A nil logger discards everything.
func SetLogger(logger *zap.Logger) {
	defaultFactory.setLogger(logger)
}

// Resolve calls Resolve on the package-level factory.
func Resolve(name, material string) *Primitive {
	return defaultFactory.Resolve(name, material)
}

// GenerateKeyMaterial calls GenerateKeyMaterial on the package-level factory.
func GenerateKeyMaterial(name string) string {
	return defaultFactory.GenerateKeyMaterial(name)
}
