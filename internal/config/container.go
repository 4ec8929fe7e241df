package config

import (
	"mrc-extractor/internal/domain"
	"mrc-extractor/internal/infra/tesseract"
	"mrc-extractor/internal/service"
	"mrc-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config     domain.Config
	Logger     domain.Logger
	Scratch    domain.ScratchSpace
	Dispatcher domain.Dispatcher
	Classifier domain.ReadabilityClassifier
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the extraction pipeline for the given configuration
func NewContainerWithConfig(config domain.Config) *Container {
	appLogger := logger.NewLogger(config.GetLogLevel())
	scratch := service.NewScratchDir(config.GetScratchDir(), appLogger)

	extractors := map[domain.Format]domain.TextExtractor{
		domain.FormatPDF:   service.NewPDFExtractor(appLogger),
		domain.FormatDOCX:  service.NewDOCXExtractor(),
		domain.FormatText:  service.NewTextExtractor(),
		domain.FormatImage: service.NewImageExtractor(tesseract.NewFactory(config.GetOCRLanguages()), appLogger),
	}

	dispatcher := service.NewExtractionDispatcher(
		extractors,
		service.NewZipExpander(config.GetMaxArchiveExpandedSize(), appLogger),
		scratch,
		appLogger,
	)

	return &Container{
		Config:     config,
		Logger:     appLogger,
		Scratch:    scratch,
		Dispatcher: dispatcher,
		Classifier: service.NewReadabilityClassifier(appLogger),
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
