// Copyright (c) 2026 Palantir Technologies. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser turns annotated interface declarations into per-method request metadata.
package parser

import (
	"context"
	"fmt"
	"sort"

	"github.com/palantir/declarative-go-client/declarative-go-contract/annotation"
	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	"github.com/palantir/declarative-go-client/declarative-go-contract/metadata"
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
	"github.com/palantir/pkg/metrics"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	wparams "github.com/palantir/witchcraft-go-params"
)

var defaultURLTypes = []string{"url.URL", "*url.URL"}

// Parser parses interface declarations into method metadata. A Parser holds only immutable
// configuration and is safe for concurrent use.
type Parser struct {
	// strategy is nil when the vocabulary is selected per interface.
	strategy       Strategy
	urlTypes       map[string]struct{}
	metricsEnabled bool
	metricTags     metrics.Tags
}

// Param configures a Parser.
type Param interface {
	apply(*Parser) error
}

type paramFunc func(*Parser) error

func (f paramFunc) apply(p *Parser) error {
	return f(p)
}

// WithStrategy forces the annotation vocabulary for every interface.
func WithStrategy(strategy Strategy) Param {
	return paramFunc(func(p *Parser) error {
		if strategy == nil {
			return werror.Error("parser.WithStrategy: strategy can not be nil")
		}
		p.strategy = strategy
		return nil
	})
}

// WithURLTypes replaces the declared parameter types that denote a URL override.
func WithURLTypes(types ...string) Param {
	return paramFunc(func(p *Parser) error {
		p.urlTypes = make(map[string]struct{}, len(types))
		for _, t := range types {
			p.urlTypes[t] = struct{}{}
		}
		return nil
	})
}

// WithMetricTags adds tags to every metric emitted by the parser.
func WithMetricTags(tags ...metrics.Tag) Param {
	return paramFunc(func(p *Parser) error {
		p.metricTags = append(p.metricTags, tags...)
		return nil
	})
}

// WithMetricsDisabled stops the parser from emitting metrics.
func WithMetricsDisabled() Param {
	return paramFunc(func(p *Parser) error {
		p.metricsEnabled = false
		return nil
	})
}

// New returns a Parser. Without params, the vocabulary is selected per interface and url.URL and
// *url.URL parameters are URL overrides.
func New(params ...Param) (*Parser, error) {
	p := &Parser{
		urlTypes:       make(map[string]struct{}, len(defaultURLTypes)),
		metricsEnabled: true,
	}
	for _, t := range defaultURLTypes {
		p.urlTypes[t] = struct{}{}
	}
	for _, param := range params {
		if param == nil {
			continue
		}
		if err := param.apply(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse looks up the interface name in source and parses it.
func (p *Parser) Parse(ctx context.Context, source annotation.Source, name string) ([]*metadata.MethodMetadata, error) {
	iface, err := source.Interface(name)
	if err != nil {
		p.logFailure(ctx, p.strategy, name, err)
		return nil, err
	}
	return p.ParseInterface(ctx, iface)
}

// ParseSource parses every interface of source, keyed by interface name.
func (p *Parser) ParseSource(ctx context.Context, source annotation.Source) (map[string][]*metadata.MethodMetadata, error) {
	names := source.Names()
	sort.Strings(names)
	out := make(map[string][]*metadata.MethodMetadata, len(names))
	for _, name := range names {
		mds, err := p.Parse(ctx, source, name)
		if err != nil {
			return nil, err
		}
		out[name] = mds
	}
	return out, nil
}

// ParseInterface parses every method of iface in declaration order. No metadata is returned if
// any method fails.
func (p *Parser) ParseInterface(ctx context.Context, iface annotation.Interface) ([]*metadata.MethodMetadata, error) {
	ctx, finish := startSpan(ctx)
	defer finish()
	strategy := p.strategyFor(iface)
	mds, err := p.parseInterface(strategy, iface)
	if err != nil {
		p.logFailure(ctx, strategy, iface.Name, err)
		return nil, err
	}
	p.logParsed(ctx, strategy, mds...)
	return mds, nil
}

// ParseMethod parses a single method against the annotations of iface. The method need not be
// one of iface.Methods.
func (p *Parser) ParseMethod(ctx context.Context, iface annotation.Interface, method annotation.Method) (*metadata.MethodMetadata, error) {
	ctx, finish := startSpan(ctx)
	defer finish()
	strategy := p.strategyFor(iface, method)
	md, err := p.parseSingle(strategy, iface, method)
	if err != nil {
		p.logFailure(ctx, strategy, iface.Name, err)
		return nil, err
	}
	p.logParsed(ctx, strategy, md)
	return md, nil
}

func (p *Parser) strategyFor(iface annotation.Interface, extra ...annotation.Method) Strategy {
	if p.strategy != nil {
		return p.strategy
	}
	return selectStrategy(iface, extra...)
}

func (p *Parser) parseSingle(strategy Strategy, iface annotation.Interface, method annotation.Method) (*metadata.MethodMetadata, error) {
	deltas, err := interfaceDeltas(strategy, iface)
	if err != nil {
		return nil, err
	}
	return p.parseMethod(strategy, iface.Name, deltas, method)
}

func (p *Parser) parseInterface(strategy Strategy, iface annotation.Interface) ([]*metadata.MethodMetadata, error) {
	deltas, err := interfaceDeltas(strategy, iface)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(iface.Methods))
	mds := make([]*metadata.MethodMetadata, 0, len(iface.Methods))
	for _, method := range iface.Methods {
		md, err := p.parseMethod(strategy, iface.Name, deltas, method)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[md.ConfigKey()]; ok {
			return nil, errors.New(errors.DuplicateMethod, fmt.Sprintf("Overrides unsupported: %s", md.ConfigKey()),
				werror.SafeParam("configKey", md.ConfigKey()))
		}
		seen[md.ConfigKey()] = struct{}{}
		mds = append(mds, md)
	}
	return mds, nil
}

// interfaceDeltas validates the interface annotations once, before any method is processed.
func interfaceDeltas(strategy Strategy, iface annotation.Interface) ([]Delta, error) {
	deltas := make([]Delta, 0, len(iface.Annotations))
	for _, a := range iface.Annotations {
		delta, err := strategy.OnInterfaceAnnotation(iface.Name, a)
		if err != nil {
			return nil, werror.Wrap(err, "invalid interface annotation", werror.SafeParam("interfaceName", iface.Name))
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

func (p *Parser) parseMethod(strategy Strategy, ifaceName string, ifaceDeltas []Delta, method annotation.Method) (*metadata.MethodMetadata, error) {
	types := make([]string, len(method.Parameters))
	for i, param := range method.Parameters {
		types[i] = param.Type
	}
	b := metadata.NewBuilder(metadata.ConfigKey(ifaceName, method.Name, types))

	for _, delta := range ifaceDeltas {
		if err := applyDelta(b, method.Name, delta); err != nil {
			return nil, err
		}
	}
	for _, a := range method.Annotations {
		delta, err := strategy.OnMethodAnnotation(method.Name, a)
		if err != nil {
			return nil, werror.Wrap(err, "invalid method annotation", werror.SafeParam("configKey", b.ConfigKey()))
		}
		if err := applyDelta(b, method.Name, delta); err != nil {
			return nil, err
		}
	}
	if b.Template().Method() == "" {
		return nil, errors.New(errors.MissingHTTPMethod,
			fmt.Sprintf("Method %s not annotated with HTTP method type (ex. GET, POST)", method.Name),
			werror.SafeParam("configKey", b.ConfigKey()))
	}

	for i, param := range method.Parameters {
		binding, err := strategy.OnParameterAnnotations(b.Template(), i, param.Annotations)
		if err != nil {
			return nil, werror.Wrap(err, "invalid parameter annotation",
				werror.SafeParam("configKey", b.ConfigKey()),
				werror.SafeParam("parameterIndex", i))
		}
		if err := p.applyBinding(b, i, param, binding); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

func applyDelta(b *metadata.Builder, methodName string, delta Delta) error {
	tmpl := b.Template()
	if delta.Method != "" {
		if existing := tmpl.Method(); existing != "" {
			return errors.New(errors.ConflictingHTTPMethod,
				fmt.Sprintf("Method %s contains multiple HTTP methods. Found: %s and %s", methodName, existing, delta.Method),
				werror.SafeParam("configKey", b.ConfigKey()),
				werror.SafeParam("existingMethod", existing),
				werror.SafeParam("method", delta.Method))
		}
		tmpl.SetMethod(delta.Method)
	}
	if delta.Path != "" {
		tmpl.Append(delta.Path)
	}
	for _, edit := range delta.Headers {
		if edit.Replace {
			tmpl.SetHeader(edit.Name, edit.Values...)
		} else {
			tmpl.AddHeader(edit.Name, edit.Values...)
		}
	}
	if delta.Body != nil {
		if tmpl.Body().Kind() != template.NoBody {
			return errors.New(errors.TooManyBodyParameters,
				fmt.Sprintf("Method has too many Body parameters: %s", b.ConfigKey()),
				werror.SafeParam("configKey", b.ConfigKey()))
		}
		tmpl.SetBody(*delta.Body)
	}
	return nil
}

func (p *Parser) logParsed(ctx context.Context, strategy Strategy, mds ...*metadata.MethodMetadata) {
	logger := svc1log.FromContext(ctx)
	for _, md := range mds {
		tmpl := md.Template()
		logger.Debug("Parsed method contract.", svc1log.SafeParams(map[string]interface{}{
			"configKey": md.ConfigKey(),
			"method":    tmpl.Method(),
			"url":       tmpl.URL(),
			"strategy":  strategy.Name(),
		}))
	}
	p.markParsed(ctx, strategy, len(mds))
}

func (p *Parser) logFailure(ctx context.Context, strategy Strategy, interfaceName string, err error) {
	safe, unsafe := werror.ParamsFromError(err)
	svc1log.FromContext(ctx).Error("Failed to parse interface contract.",
		svc1log.SafeParam("interfaceName", interfaceName),
		svc1log.Params(wparams.NewSafeAndUnsafeParamStorer(safe, unsafe)),
		svc1log.Stacktrace(err))
	p.markFailure(ctx, strategy, err)
}
