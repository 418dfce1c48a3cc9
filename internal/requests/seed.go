package requests

// Seed returns the mock requests loaded at startup.
func Seed() []Request {
	return []Request{
		{
			ID: 1, NroSolicitud: "REQ-2024-4587",
			Titulo:      "Implementación de módulo de validación de datos en sistema de gestión",
			FechaInicio: "15/10/24", FechaTermino: "//", Estado: EstadoConfiguracion, FechaEstado: "24/10/24",
			NombreUsuario: "Catalina Rojas Pinto", Desarrollador: "Felipe González Miranda",
			TipoSolicitud: "CORRECCION DE PROGRAMA", Area: "INFORMATICA", PasoA: "PRODUCCION",
			Ambiente: "Ninguno", Prioridad: PrioridadAlta,
		},
		{
			ID: 2, NroSolicitud: "REQ-2024-3291",
			Titulo:      "Ajustes en módulo de reportería ejecutiva y dashboard analítico",
			FechaInicio: "27/03/24", FechaTermino: "15/04/24", Estado: EstadoTerminado, FechaEstado: "15/04/24",
			NombreUsuario: "Javiera Muñoz Bravo", Desarrollador: "Matías Silva Contreras",
			TipoSolicitud: "CORRECCION DE PROGRAMA", Area: "INFORMATICA", PasoA: "CERTIFICACION",
			Ambiente: "CORPORATIVO", Prioridad: PrioridadMedia,
		},
		{
			ID: 3, NroSolicitud: "REQ-2024-3845",
			Titulo:      "Desarrollo de nuevo dashboard comercial para área de ventas",
			FechaInicio: "05/05/24", FechaTermino: "//", Estado: EstadoDesarrollo, FechaEstado: "10/05/24",
			NombreUsuario: "Ignacio Torres Espinoza", Desarrollador: "Camila Fernández Lagos",
			TipoSolicitud: "NUEVO DESARROLLO", Area: "INFORMATICA", PasoA: "DESARROLLO",
			Ambiente: "DESARROLLO", Prioridad: PrioridadAlta,
		},
		{
			ID: 4, NroSolicitud: "REQ-2024-4123",
			Titulo:      "Corrección de errores en módulo de procesamiento de siniestros",
			FechaInicio: "12/06/24", FechaTermino: "20/06/24", Estado: EstadoTerminado, FechaEstado: "20/06/24",
			NombreUsuario: "Antonia Castro Reyes", Desarrollador: "Diego Vargas Parra",
			TipoSolicitud: "CORRECCION DE PROGRAMA", Area: "INFORMATICA", PasoA: "PRODUCCION",
			Ambiente: "CORPORATIVO", Prioridad: PrioridadBaja,
		},
		{
			ID: 5, NroSolicitud: "REQ-2024-4678",
			Titulo:      "Integración con servicio externo para validación automática de documentos",
			FechaInicio: "18/07/24", FechaTermino: "//", Estado: EstadoDesarrollo, FechaEstado: "25/07/24",
			NombreUsuario: "Lucas Pérez Morales", Desarrollador: "Sofía Ramírez Díaz",
			TipoSolicitud: "NUEVO DESARROLLO", Area: "INFORMATICA", PasoA: "DESARROLLO",
			Ambiente: "DESARROLLO", Prioridad: PrioridadAlta,
		},
		{
			ID: 6, NroSolicitud: "REQ-2024-4892",
			Titulo:      "Optimización de rendimiento en consultas de base de datos principal",
			FechaInicio: "02/08/24", FechaTermino: "10/08/24", Estado: EstadoCertificacion, FechaEstado: "10/08/24",
			NombreUsuario: "Emilia Sánchez Vera", Desarrollador: "Maximiliano Ortiz Navarro",
			TipoSolicitud: "MEJORA DE PERFORMANCE", Area: "INFORMATICA", PasoA: "CERTIFICACION",
			Ambiente: "CERTIFICACION", Prioridad: PrioridadMedia,
		},
	}
}
