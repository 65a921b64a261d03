package usecases

import (
	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceBulkUploadSecurity() security.EnforceSecurityBulkUpload {
	return &security.EnforceSecurityBulkUploadImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceTaxRatingSecurity() security.EnforceSecurityTaxRating {
	return &security.EnforceSecurityTaxRatingImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceReferenceDataSecurity() security.EnforceSecurityReferenceData {
	return &security.EnforceSecurityReferenceDataImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceAuditSecurity() security.EnforceSecurityAudit {
	return &security.EnforceSecurityAuditImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewBulkUploadUsecase() BulkUploadUsecase {
	return BulkUploadUsecase{
		enforceSecurity:    usecases.NewEnforceBulkUploadSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		uploadRepository:   usecases.Repositories.TaxRatingDbRepository,
		auditRepository:    usecases.Repositories.TaxRatingDbRepository,
		blobRepository:     usecases.Repositories.BlobRepository,
		bucketUrl:          usecases.uploadBucketUrl,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewUploadProcessingUsecase() UploadProcessingUsecase {
	return UploadProcessingUsecase{
		enforceSecurity:    usecases.NewEnforceBulkUploadSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		uploadRepository:   usecases.Repositories.TaxRatingDbRepository,
		taxRatingWriter:    usecases.Repositories.TaxRatingDbRepository,
		auditRepository:    usecases.Repositories.TaxRatingDbRepository,
		blobRepository:     usecases.Repositories.BlobRepository,
		rowValidator: uploadRowValidator{
			referenceReader: usecases.Repositories.TaxRatingDbRepository,
		},
		bucketUrl:   usecases.uploadBucketUrl,
		credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewTaxRatingUsecase() TaxRatingUsecase {
	return TaxRatingUsecase{
		enforceSecurity:    usecases.NewEnforceTaxRatingSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.TaxRatingDbRepository,
		auditRepository:    usecases.Repositories.TaxRatingDbRepository,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewReferenceDataUsecase() ReferenceDataUsecase {
	return ReferenceDataUsecase{
		enforceSecurity:    usecases.NewEnforceReferenceDataSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.TaxRatingDbRepository,
		auditRepository:    usecases.Repositories.TaxRatingDbRepository,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewAuditUsecase() AuditUsecase {
	return AuditUsecase{
		enforceSecurity: usecases.NewEnforceAuditSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.TaxRatingDbRepository,
	}
}
