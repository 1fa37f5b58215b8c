package port

//go:generate mockery --name=^(TemplateStore|CaseManagementAPI|QuestionnaireAPI|Publisher|RunJournal|TrainingUseCase)$ --with-expecter --output=./mocks --outpkg=mocks
